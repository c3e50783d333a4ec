// Package topics adds file-based documentation topics to a cobra CLI.
// Topics are loaded from an fs.FS, usually an embedded one, so the
// binary carries its own guides and needs no install step to find them.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Manager holds the topics found in a filesystem.
type Manager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is a single documentation page.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager.
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content for the terminal.
	// Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a Manager with default options and scans fsys for topics.
func New(fsys fs.FS) (*Manager, error) {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a Manager and scans fsys for topics. A file's
// topic name is its base name without the extension, regardless of how
// deep in the tree it sits.
func NewWithOptions(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	if err := m.scan(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func (m *Manager) scan() error {
	return fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range m.extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Path:    p,
			Content: string(content),
		}
		return nil
	})
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (*Topic, bool) {
	topic, ok := m.topics[name]
	return topic, ok
}

// Names returns all topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic's content with the configured renderer.
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, path.Ext(topic.Path))
}

// NewCommand builds a cobra command that renders the named topic, or
// lists all topics when called without arguments.
func (m *Manager) NewCommand(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [topic]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return m.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				names := m.Names()
				if len(names) == 0 {
					fmt.Fprintln(out, "No topics available.")
					return nil
				}
				fmt.Fprintln(out, "Available topics:")
				for _, name := range names {
					fmt.Fprintf(out, "  %s\n", name)
				}
				fmt.Fprintf(out, "\nUse '%s %s <topic>' to read one.\n",
					cmd.Root().Name(), use)
				return nil
			}

			topic, ok := m.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q, run '%s %s' for the list",
					args[0], cmd.Root().Name(), use)
			}
			fmt.Fprint(out, m.Render(topic))
			return nil
		},
	}
}
