package brigade

import "time"

// JobPhase is the lifecycle phase of a job.
type JobPhase string

// Job phases.
const (
	JobPhaseAborted          JobPhase = "ABORTED"
	JobPhaseFailed           JobPhase = "FAILED"
	JobPhasePending          JobPhase = "PENDING"
	JobPhaseRunning          JobPhase = "RUNNING"
	JobPhaseSchedulingFailed JobPhase = "SCHEDULING_FAILED"
	JobPhaseStarting         JobPhase = "STARTING"
	JobPhaseSucceeded        JobPhase = "SUCCEEDED"
	JobPhaseTimedOut         JobPhase = "TIMED_OUT"
	JobPhaseUnknown          JobPhase = "UNKNOWN"
)

// Job is a containerized unit of work spawned by a worker.
type Job struct {
	Name   string     `json:"name,omitempty"   yaml:"name,omitempty"`
	Spec   JobSpec    `json:"spec"             yaml:"spec"`
	Status *JobStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// JobSpec describes the containers of a job.
type JobSpec struct {
	PrimaryContainer  JobContainerSpec            `json:"primaryContainer"            yaml:"primaryContainer"`
	SidecarContainers map[string]JobContainerSpec `json:"sidecarContainers,omitzero" yaml:"sidecarContainers,omitempty"`
	TimeoutSeconds    int64                       `json:"timeoutSeconds,omitempty"    yaml:"timeoutSeconds,omitempty"`
	Host              *JobHost                    `json:"host,omitempty"              yaml:"host,omitempty"`
}

// JobContainerSpec extends ContainerSpec with job-specific mounts and privileges.
type JobContainerSpec struct {
	ContainerSpec `json:",inline" yaml:",inline"`

	WorkingDirectory    string `json:"workingDirectory,omitempty"    yaml:"workingDirectory,omitempty"`
	WorkspaceMountPath  string `json:"workspaceMountPath,omitempty"  yaml:"workspaceMountPath,omitempty"`
	SourceMountPath     string `json:"sourceMountPath,omitempty"     yaml:"sourceMountPath,omitempty"`
	Privileged          *bool  `json:"privileged,omitempty"          yaml:"privileged,omitempty"`
	UseHostDockerSocket *bool  `json:"useHostDockerSocket,omitempty" yaml:"useHostDockerSocket,omitempty"`
}

// JobHost constrains the node a job is scheduled on.
type JobHost struct {
	OS           string            `json:"os,omitempty"           yaml:"os,omitempty"`
	NodeSelector map[string]string `json:"nodeSelector,omitzero" yaml:"nodeSelector,omitempty"`
}

// JobStatus is maintained by the server.
type JobStatus struct {
	Started *time.Time `json:"started,omitempty" yaml:"started,omitempty"`
	Ended   *time.Time `json:"ended,omitempty"   yaml:"ended,omitempty"`
	Phase   JobPhase   `json:"phase,omitempty"   yaml:"phase,omitempty"`
}

// ImagePullPolicy controls when a container image is pulled.
type ImagePullPolicy string

// Image pull policies.
const (
	ImagePullPolicyIfNotPresent ImagePullPolicy = "IfNotPresent"
	ImagePullPolicyAlways       ImagePullPolicy = "Always"
)

// ContainerSpec describes a single container.
type ContainerSpec struct {
	Image           string            `json:"image"                     yaml:"image"`
	ImagePullPolicy ImagePullPolicy   `json:"imagePullPolicy,omitempty" yaml:"imagePullPolicy,omitempty"`
	Command         []string          `json:"command,omitzero"         yaml:"command,omitempty"`
	Arguments       []string          `json:"arguments,omitzero"       yaml:"arguments,omitempty"`
	Environment     map[string]string `json:"environment,omitzero"     yaml:"environment,omitempty"`
}
