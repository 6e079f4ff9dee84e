package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/kitnetlab/agent/agent/contract"
	openrouterx "github.com/kitnetlab/agent/pkg/openrouter"
)

// Config selects the chat model for the two rounds of a turn. The reply
// round may run a different (usually cheaper) model than the plan round.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	ReplyModel       string  `envconfig:"REPLY_MODEL" split_words:"true"`
	ReplyTemperature float32 `envconfig:"REPLY_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: model is required", contractx.ErrValidation)
	}
	return nil
}

// PlanConfig is the model used for the tool-calling round.
func (c Config) PlanConfig() openrouterx.Config {
	return c.openRouter(strings.TrimSpace(c.Model), c.Temperature)
}

// ReplyConfig is the model used for the final, tool-free round. It falls
// back to the plan model when no override is set.
func (c Config) ReplyConfig() openrouterx.Config {
	modelName := strings.TrimSpace(c.ReplyModel)
	if modelName == "" {
		modelName = strings.TrimSpace(c.Model)
	}
	temp := c.Temperature
	if c.ReplyTemperature >= 0 {
		temp = c.ReplyTemperature
	}
	return c.openRouter(modelName, temp)
}

func (c Config) openRouter(modelName string, temp float32) openrouterx.Config {
	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
