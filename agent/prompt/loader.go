package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed template/system.txt
var systemRaw string

var systemTemplate = template.Must(template.New("system").Parse(strings.TrimSpace(systemRaw)))

// SystemData is the live slice of the system prompt; everything else in the
// template is static business configuration.
type SystemData struct {
	LeadName  string
	HasUnits  bool
	UnitCount int
	RefPrice  string
}

// RenderSystem builds the system prompt for one turn.
func RenderSystem(data SystemData) (string, error) {
	if strings.TrimSpace(data.LeadName) == "" {
		data.LeadName = DefaultLeadName
	}
	var sb strings.Builder
	if err := systemTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return sb.String(), nil
}
