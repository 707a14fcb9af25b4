package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// projectGitignore keeps report exports and log files written under
// .greenevent/ out of version control while config.yaml stays tracked.
const projectGitignore = `# greenevent: track config.yaml, ignore generated output
reports/
*.log
`

// GitignoreContent is what config init writes to .greenevent/.gitignore.
func GitignoreContent() string {
	return projectGitignore
}

// EnsureGitignore writes dir/.gitignore unless the file is already there, creating
// dir as needed. It reports whether it wrote the file; an edited .gitignore is
// left untouched.
func EnsureGitignore(dir string) (bool, error) {
	path := filepath.Join(dir, ".gitignore")

	switch _, err := os.Stat(path); {
	case err == nil:
		return false, nil
	case !os.IsNotExist(err):
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating project directory %s: %w", dir, err)
	}
	//nolint:gosec // 0644 so every collaborator's git can read it.
	if err := os.WriteFile(path, []byte(projectGitignore), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
