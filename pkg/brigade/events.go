package brigade

import (
	"net/url"
	"strings"
)

// Event is an occurrence, emitted by a gateway or a user, that the platform
// routes to subscribed projects.
type Event struct {
	TypeMeta `json:",inline" yaml:",inline"`

	Metadata   *ObjectMeta       `json:"metadata,omitempty"   yaml:"metadata,omitempty"`
	ProjectID  string            `json:"projectID"            yaml:"projectID"`
	Source     string            `json:"source"               yaml:"source"`
	Type       string            `json:"type"                 yaml:"type"`
	Labels     map[string]string `json:"labels,omitzero"     yaml:"labels,omitempty"`
	ShortTitle string            `json:"shortTitle,omitempty" yaml:"shortTitle,omitempty"`
	LongTitle  string            `json:"longTitle,omitempty"  yaml:"longTitle,omitempty"`
	Git        *GitDetails       `json:"git,omitempty"        yaml:"git,omitempty"`
	Payload    string            `json:"payload,omitempty"    yaml:"payload,omitempty"`
	Worker     *Worker           `json:"worker,omitempty"     yaml:"worker,omitempty"`
}

// NewEvent creates an event addressed to a single project.
func NewEvent(projectID, source, eventType string) Event {
	return Event{
		ProjectID: projectID,
		Source:    source,
		Type:      eventType,
	}
}

// PrepareEvent returns a copy of event with its type tag stamped.
func PrepareEvent(event Event) Event {
	event.TypeMeta = NewTypeMeta(KindEvent)

	return event
}

// EventSubscription describes which events a project wants to receive.
type EventSubscription struct {
	Source string            `json:"source"           yaml:"source"`
	Types  []string          `json:"types,omitzero"  yaml:"types,omitempty"`
	Labels map[string]string `json:"labels,omitzero" yaml:"labels,omitempty"`
}

// GitDetails points an event at a specific revision of a repository.
type GitDetails struct {
	CloneURL string `json:"cloneURL,omitempty" yaml:"cloneURL,omitempty"`
	Commit   string `json:"commit,omitempty"   yaml:"commit,omitempty"`
	Ref      string `json:"ref,omitempty"      yaml:"ref,omitempty"`
}

// EventsSelector filters event listings and bulk operations.
type EventsSelector struct {
	ProjectID    string        `json:"projectID,omitempty"    yaml:"projectID,omitempty"`
	WorkerPhases []WorkerPhase `json:"workerPhases,omitempty" yaml:"workerPhases,omitempty"`
}

// NewEventsSelector creates an empty selector.
func NewEventsSelector() *EventsSelector {
	return &EventsSelector{}
}

// WithProjectID restricts the selector to events of one project.
func (s *EventsSelector) WithProjectID(projectID string) *EventsSelector {
	s.ProjectID = projectID

	return s
}

// WithWorkerPhases appends worker phases to the selector.
func (s *EventsSelector) WithWorkerPhases(phases ...WorkerPhase) *EventsSelector {
	s.WorkerPhases = append(s.WorkerPhases, phases...)

	return s
}

// ToValues converts the selector into query parameters. Worker phases are
// sent as a single comma-separated value.
func (s *EventsSelector) ToValues() url.Values {
	values := url.Values{}
	if s == nil {
		return values
	}

	if s.ProjectID != "" {
		values.Set(QueryProjectID, s.ProjectID)
	}

	if len(s.WorkerPhases) > 0 {
		values.Set(QueryWorkerPhases, JoinWorkerPhases(s.WorkerPhases))
	}

	return values
}

// JoinWorkerPhases encodes phases as a comma-separated list.
func JoinWorkerPhases(phases []WorkerPhase) string {
	parts := make([]string, 0, len(phases))
	for _, phase := range phases {
		parts = append(parts, string(phase))
	}

	return strings.Join(parts, ",")
}

// CancelManyEventsResult reports how many events a bulk cancellation affected.
type CancelManyEventsResult struct {
	Count int64 `json:"count" yaml:"count"`
}

// DeleteManyEventsResult reports how many events a bulk deletion affected.
type DeleteManyEventsResult struct {
	Count int64 `json:"count" yaml:"count"`
}

// EventList is a page of events.
type EventList = List[Event]
