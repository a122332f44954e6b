// Package topics formats the registered bus topics for the CLI.
package topics

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/farays/internal/topicmgr"
)

// TopicDisplay represents a topic for display purposes
type TopicDisplay struct {
	Name          string   `json:"name"`
	Scope         string   `json:"scope"`
	Module        string   `json:"module"`
	Description   string   `json:"description"`
	PayloadType   string   `json:"payload_type,omitempty"`
	PayloadFields []string `json:"payload_fields,omitempty"`
}

func toDisplay(t topicmgr.Topic) TopicDisplay {
	cfg := t.Config()
	return TopicDisplay{
		Name:          t.Name(),
		Scope:         string(t.Scope()),
		Module:        t.Module(),
		Description:   t.Description(),
		PayloadType:   cfg.PayloadType,
		PayloadFields: cfg.PayloadFields,
	}
}

// DisplayTopicsTable writes topics as an aligned table.
func DisplayTopicsTable(w io.Writer, topics []topicmgr.Topic) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCOPE\tMODULE\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t-----\t------\t-----------")
	for _, topic := range topics {
		module := topic.Module()
		if module == "" {
			module = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			topic.Name(),
			topic.Scope(),
			module,
			truncateString(topic.Description(), 60))
	}
	return tw.Flush()
}

// DisplayTopicsJSON writes topics as indented JSON with a count.
func DisplayTopicsJSON(w io.Writer, topics []topicmgr.Topic) error {
	displays := make([]TopicDisplay, len(topics))
	for i, topic := range topics {
		displays[i] = toDisplay(topic)
	}
	output := struct {
		Topics []TopicDisplay `json:"topics"`
		Count  int            `json:"count"`
	}{
		Topics: displays,
		Count:  len(displays),
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// DisplayTopicDetails writes a single topic in the given format.
func DisplayTopicDetails(w io.Writer, topic topicmgr.Topic, format string) error {
	d := toDisplay(topic)
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(d)
	case "table", "":
		fmt.Fprintf(w, "Name:        %s\n", d.Name)
		fmt.Fprintf(w, "Scope:       %s\n", d.Scope)
		fmt.Fprintf(w, "Module:      %s\n", d.Module)
		fmt.Fprintf(w, "Description: %s\n", d.Description)
		if d.PayloadType != "" {
			fmt.Fprintf(w, "Payload:     %s\n", d.PayloadType)
		}
		if len(d.PayloadFields) > 0 {
			fmt.Fprintf(w, "Fields:      %s\n", strings.Join(d.PayloadFields, ", "))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, use 'table' or 'json'", format)
	}
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
