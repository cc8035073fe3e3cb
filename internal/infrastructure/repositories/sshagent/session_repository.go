package sshagent

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gilesorr/gitchk/internal/domain/repositories"
)

// SessionRepository reports the ssh-agent identities loaded for this
// session. The batch header shows the summary so the user can tell why a
// fetch might prompt or fail.
type SessionRepository struct{}

// NewSessionRepository creates an ssh-agent backed SessionRepository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

var _ repositories.SessionRepository = (*SessionRepository)(nil)

// Summary runs `ssh-add -l` best effort and counts the loaded identities.
func (it *SessionRepository) Summary(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "ssh-add", "-l").Output()
	if err != nil {
		return "no ssh-agent identities loaded"
	}

	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	if count == 0 {
		return "no ssh-agent identities loaded"
	}
	if count == 1 {
		return "1 ssh-agent identity loaded"
	}
	return fmt.Sprintf("%d ssh-agent identities loaded", count)
}
