package gitconfig

import (
	"errors"
	"fmt"
	"regexp"
)

// Remotes are stored as rsync.<name>.url, mirroring how git itself keeps
// remote definitions.
const configSection = "rsync"

var (
	ErrDuplicateName  = errors.New("remote name already exists")
	ErrRemoteNotFound = errors.New("no such remote")
)

// Remote is a named transfer endpoint, the URL in host:path form.
type Remote struct {
	Name string
	URL  string
}

var remoteKeyPattern = regexp.MustCompile(`^` + configSection + `\.(.+)\.url$`)

// Registry is the persisted name -> URL table of remote aliases.
type Registry struct {
	config *Configuration
}

func NewRegistry(config *Configuration) *Registry {
	return &Registry{config: config}
}

func remoteKey(name string) string {
	return fmt.Sprintf("%s.%s.url", configSection, name)
}

// Add persists a new remote. Adding a name that already exists fails with
// ErrDuplicateName and leaves the registry untouched.
func (r *Registry) Add(name string, url string) error {
	if name == "" {
		return errors.New("no name is specified")
	}
	if url == "" {
		return errors.New("no URL is specified")
	}

	_, exists, err := r.config.Get(remoteKey(name))
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	return r.config.Set(remoteKey(name), url)
}

// Remove deletes a remote and its whole configuration section.
func (r *Registry) Remove(name string) error {
	if name == "" {
		return errors.New("no name is specified")
	}

	removed, err := r.config.RemoveSection(configSection + "." + name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}
	return nil
}

// List returns every remote in the order git reports them, which for a single
// config file is insertion order.
func (r *Registry) List() ([]Remote, error) {
	entries, err := r.config.GetRegexp(remoteKeyPattern.String())
	if err != nil {
		return nil, err
	}

	var remotes []Remote
	for _, entry := range entries {
		match := remoteKeyPattern.FindStringSubmatch(entry.Key)
		if match == nil {
			continue
		}
		remotes = append(remotes, Remote{Name: match[1], URL: entry.Value})
	}
	return remotes, nil
}

// Resolve returns the URL a name points at.
func (r *Registry) Resolve(name string) (string, error) {
	url, exists, err := r.config.Get(remoteKey(name))
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}
	return url, nil
}
