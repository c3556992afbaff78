package brigade

import "net/url"

// Project is the platform's unit of configuration: it subscribes to events
// and describes the worker that handles them.
type Project struct {
	TypeMeta `json:",inline" yaml:",inline"`

	Metadata    ObjectMeta         `json:"metadata"              yaml:"metadata"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Spec        ProjectSpec        `json:"spec"                  yaml:"spec"`
	Kubernetes  *KubernetesDetails `json:"kubernetes,omitempty"  yaml:"kubernetes,omitempty"`
}

// NewProject creates a project running the given script with the default
// worker settings.
func NewProject(id, description, script string) Project {
	return Project{
		Metadata:    ObjectMeta{ID: id},
		Description: description,
		Spec: ProjectSpec{
			WorkerTemplate: NewWorkerSpec(script),
		},
	}
}

// ProjectSpec is the user-supplied part of a project.
type ProjectSpec struct {
	EventSubscriptions []EventSubscription `json:"eventSubscriptions,omitzero" yaml:"eventSubscriptions,omitempty"`
	WorkerTemplate     WorkerSpec          `json:"workerTemplate"               yaml:"workerTemplate"`
}

// KubernetesDetails is populated by the server and rejected if a client sends it.
type KubernetesDetails struct {
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// ProjectsSelector filters project listings. The platform does not define any
// project filters yet.
type ProjectsSelector struct{}

// ToValues converts the selector into query parameters.
func (s *ProjectsSelector) ToValues() url.Values {
	return url.Values{}
}

// PrepareProject returns a copy of project that is safe to transmit: the type
// tag is stamped and server-managed fields are cleared.
func PrepareProject(project Project) Project {
	project.TypeMeta = NewTypeMeta(KindProject)
	project.Metadata.Created = nil
	project.Kubernetes = nil

	return project
}

// ProjectList is a page of projects.
type ProjectList = List[Project]
