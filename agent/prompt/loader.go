package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
)

//go:embed template/coordinator.txt
var coordinatorRaw string

// Coordinator returns the routing instruction given to the
// classification model.
func Coordinator() (string, error) {
	p := strings.TrimSpace(coordinatorRaw)
	if p == "" {
		return "", fmt.Errorf("%w: coordinator prompt", contractx.ErrPromptMissing)
	}
	return p, nil
}
