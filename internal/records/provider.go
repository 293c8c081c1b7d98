package records

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// BacklogDir is the per-repository subdirectory where task files live.
	BacklogDir = "backlog"
	// TasksDir is the subdirectory under backlog/ for task records.
	TasksDir = "tasks"

	maxTaskSlugLen = 50
)

// FileProvider creates markdown task records under
// <workspace>/<repository>/backlog/tasks/. It implements Appender, and
// ForRepo yields a per-repository Creator.
type FileProvider struct {
	workspaceRoot string
}

// NewFileProvider creates a provider rooted at the workspace directory
// that contains the repository checkouts.
func NewFileProvider(workspaceRoot string) *FileProvider {
	return &FileProvider{workspaceRoot: workspaceRoot}
}

// TasksPath returns the absolute path to a repository's task directory.
func (p *FileProvider) TasksPath(repository string) string {
	return filepath.Join(p.workspaceRoot, repository, BacklogDir, TasksDir)
}

// ForRepo returns a Creator bound to one repository.
func (p *FileProvider) ForRepo(repository string) Creator {
	return &fileCreator{provider: p, repository: repository}
}

// AppendSection appends a markdown section to an existing task file.
func (p *FileProvider) AppendSection(path, heading, body string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "\n## %s\n\n%s\n", heading, body); err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return nil
}

type fileCreator struct {
	provider   *FileProvider
	repository string
}

// CreateFromTemplate writes a new task file with a sequential id
// (TASK-001, TASK-002, ...) scoped to the repository.
func (c *fileCreator) CreateFromTemplate(opts CreateOptions) (*Record, error) {
	dir := c.provider.TasksPath(c.repository)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating tasks directory: %w", err)
	}

	seq, err := nextSequence(dir)
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("TASK-%03d", seq)
	filename := fmt.Sprintf("%s-%s.md", id, taskSlug(opts.Title))
	path := filepath.Join(dir, filename)

	content := fmt.Sprintf(
		"# %s: %s\n\n"+
			"**Type:** %s\n"+
			"**Priority:** %s\n"+
			"**Template:** %s\n"+
			"**Repository:** %s\n"+
			"**Created:** %s\n",
		id, opts.Title,
		opts.Type, opts.Priority, opts.Template, c.repository,
		time.Now().UTC().Format(time.RFC3339),
	)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writing task file: %w", err)
	}
	return &Record{ID: id, FilePath: path}, nil
}

// nextSequence scans existing TASK-NNN files and returns the next
// sequence number for the repository.
func nextSequence(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading tasks directory: %w", err)
	}

	max := 0
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "TASK-") {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(name, "TASK-%03d", &n); err == nil && n > max {
			max = n
		}
	}
	return max + 1, nil
}

// taskSlug converts a title into a filesystem-safe slug.
// Example: "Fix login timeout" → "fix-login-timeout"
func taskSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '_' || r == '-':
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "untitled-task"
	}
	if len(slug) <= maxTaskSlugLen {
		return slug
	}

	truncated := slug[:maxTaskSlugLen]
	if lastHyphen := strings.LastIndex(truncated, "-"); lastHyphen > maxTaskSlugLen/2 {
		truncated = truncated[:lastHyphen]
	}
	return strings.TrimRight(truncated, "-")
}
