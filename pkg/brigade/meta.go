package brigade

import (
	"net/url"
	"strconv"
	"time"
)

// APIVersion identifies the version of the platform API a resource belongs to.
type APIVersion string

// APIVersionV2 is the only API version the platform currently serves.
const APIVersionV2 APIVersion = "brigade.sh/v2"

// Kind identifies the type of a resource.
type Kind string

// Resource kinds.
const (
	KindToken   Kind = "Token"
	KindProject Kind = "Project"
	KindEvent   Kind = "Event"
)

// TypeMeta is the kind/apiVersion discriminator pair. It is flattened into
// the JSON object of the resource that embeds it.
type TypeMeta struct {
	Kind       Kind       `json:"kind,omitempty"       yaml:"kind,omitempty"`
	APIVersion APIVersion `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
}

// NewTypeMeta returns the type tag for the given kind at the current API version.
func NewTypeMeta(kind Kind) TypeMeta {
	return TypeMeta{
		Kind:       kind,
		APIVersion: APIVersionV2,
	}
}

// ObjectMeta holds the identity of a resource. Created is managed by the
// server and must never be sent by a client.
type ObjectMeta struct {
	ID      string     `json:"id"                yaml:"id"`
	Created *time.Time `json:"created,omitempty" yaml:"created,omitempty"`
}

// ListMeta carries the continuation state of a paged listing.
type ListMeta struct {
	Continue           string `json:"continue,omitempty"           yaml:"continue,omitempty"`
	RemainingItemCount *int64 `json:"remainingItemCount,omitempty" yaml:"remainingItemCount,omitempty"`
}

// List is one page of a listing. Items are kept in the order the server
// returned them.
type List[T any] struct {
	Metadata ListMeta `json:"metadata"        yaml:"metadata"`
	Items    []T      `json:"items,omitzero" yaml:"items,omitempty"`
}

// HasMore reports whether the server indicated that a further page exists.
func (l *List[T]) HasMore() bool {
	return l.Metadata.Continue != ""
}

// NextOptions returns the options that request the page after this one, or
// nil when this was the last page.
func (l *List[T]) NextOptions(limit int64) *ListOptions {
	if !l.HasMore() {
		return nil
	}

	return &ListOptions{
		Continue: l.Metadata.Continue,
		Limit:    limit,
	}
}

// ListOptions controls pagination of list operations. Zero values are
// treated as absent.
type ListOptions struct {
	Continue string `json:"continue,omitempty" yaml:"continue,omitempty"`
	Limit    int64  `json:"limit,omitempty"    yaml:"limit,omitempty"`
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithContinue sets the continuation token.
func (o *ListOptions) WithContinue(token string) *ListOptions {
	o.Continue = token

	return o
}

// WithLimit sets the page size.
func (o *ListOptions) WithLimit(limit int64) *ListOptions {
	o.Limit = limit

	return o
}

// ToValues converts the options into query parameters.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Continue != "" {
		values.Set(QueryContinue, o.Continue)
	}

	if o.Limit > 0 {
		values.Set(QueryLimit, strconv.FormatInt(o.Limit, 10))
	}

	return values
}

// Query parameter names understood by the platform.
const (
	QueryContinue     = "continue"
	QueryLimit        = "limit"
	QueryProjectID    = "projectID"
	QueryWorkerPhases = "workerPhases"
	QueryRoot         = "root"
)
