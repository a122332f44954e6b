// Package topicmgr is the catalog of event topics published on the in-process
// bus. Topics are declared once, next to the payload they carry, and can be
// listed for documentation.
package topicmgr

import "fmt"

// TopicScope defines whether a topic belongs to the framework or a module.
type TopicScope string

const (
	ScopeFramework TopicScope = "framework" // content reloads, server lifecycle
	ScopeModule    TopicScope = "module"    // reservations, testimonials
)

// TopicConfig describes a topic.
type TopicConfig struct {
	Name        string     `json:"name"`
	Module      string     `json:"module"`
	Scope       TopicScope `json:"scope"`
	Description string     `json:"description"`

	// PayloadType and PayloadFields document the JSON payload.
	PayloadType   string   `json:"payload_type"`
	PayloadFields []string `json:"payload_fields"`
}

// Topic is a registered topic definition.
type Topic struct {
	config TopicConfig
}

// Define creates a topic. A topic whose name starts with a module prefix
// ("reservations.panel.confirmed") is module scoped unless configured otherwise.
func Define(config TopicConfig) Topic {
	if config.Module == "" && config.Scope != ScopeFramework {
		config.Module = moduleOf(config.Name)
	}
	if config.Scope == "" {
		config.Scope = ScopeModule
	}
	return Topic{config: config}
}

func (t Topic) Name() string { return t.config.Name }
func (t Topic) Module() string { return t.config.Module }
func (t Topic) Scope() TopicScope { return t.config.Scope }
func (t Topic) Description() string { return t.config.Description }
func (t Topic) Config() TopicConfig { return t.config }
func (t Topic) String() string { return fmt.Sprintf("%s (%s)", t.config.Name, t.config.Scope) }

func moduleOf(name string) string {
	for i, ch := range name {
		if ch == '.' {
			return name[:i]
		}
	}
	return ""
}

// TopicError represents structured errors in the topic catalog.
type TopicError struct {
	Type    ErrorType
	Topic   string
	Message string
}

// ErrorType classifies a TopicError.
type ErrorType string

const (
	ErrorTopicNotFound         ErrorType = "topic_not_found"
	ErrorDuplicateRegistration ErrorType = "duplicate_registration"
	ErrorInvalidName           ErrorType = "invalid_name"
)

func (e *TopicError) Error() string {
	return fmt.Sprintf("topic %q: %s", e.Topic, e.Message)
}

// Is matches TopicErrors by Type, so errors.Is(err, &TopicError{Type: ...}) works.
func (e *TopicError) Is(target error) bool {
	t, ok := target.(*TopicError)
	return ok && t.Type == e.Type
}
