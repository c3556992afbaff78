package brigade

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownWorkerPhase is returned when a string does not name a worker phase.
var ErrUnknownWorkerPhase = errors.New("unknown worker phase")

// WorkerPhase is the lifecycle phase of an event's worker.
type WorkerPhase string

// Worker phases.
const (
	WorkerPhaseAborted          WorkerPhase = "ABORTED"
	WorkerPhaseCanceled         WorkerPhase = "CANCELED"
	WorkerPhaseFailed           WorkerPhase = "FAILED"
	WorkerPhasePending          WorkerPhase = "PENDING"
	WorkerPhaseRunning          WorkerPhase = "RUNNING"
	WorkerPhaseSchedulingFailed WorkerPhase = "SCHEDULING_FAILED"
	WorkerPhaseStarting         WorkerPhase = "STARTING"
	WorkerPhaseSucceeded        WorkerPhase = "SUCCEEDED"
	WorkerPhaseTimedOut         WorkerPhase = "TIMED_OUT"
	WorkerPhaseUnknown          WorkerPhase = "UNKNOWN"
)

// WorkerPhasesAll returns every worker phase.
func WorkerPhasesAll() []WorkerPhase {
	return []WorkerPhase{
		WorkerPhaseAborted,
		WorkerPhaseCanceled,
		WorkerPhaseFailed,
		WorkerPhasePending,
		WorkerPhaseRunning,
		WorkerPhaseSchedulingFailed,
		WorkerPhaseStarting,
		WorkerPhaseSucceeded,
		WorkerPhaseTimedOut,
		WorkerPhaseUnknown,
	}
}

// ParseWorkerPhase parses a phase name case-insensitively.
func ParseWorkerPhase(s string) (WorkerPhase, error) {
	candidate := WorkerPhase(strings.ToUpper(strings.TrimSpace(s)))
	for _, phase := range WorkerPhasesAll() {
		if phase == candidate {
			return phase, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownWorkerPhase, s)
}

// IsTerminal reports whether a worker in this phase will not change phase again.
func (p WorkerPhase) IsTerminal() bool {
	switch p {
	case WorkerPhaseAborted, WorkerPhaseCanceled, WorkerPhaseFailed,
		WorkerPhaseSchedulingFailed, WorkerPhaseSucceeded, WorkerPhaseTimedOut:
		return true
	default:
		return false
	}
}

// LogLevel is the verbosity of a worker.
type LogLevel string

// Log levels.
const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// Worker is the component that handles a single event.
type Worker struct {
	Spec   WorkerSpec    `json:"spec"             yaml:"spec"`
	Status *WorkerStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Jobs   []Job         `json:"jobs,omitzero"   yaml:"jobs,omitempty"`
}

// WorkerStatus is maintained by the server.
type WorkerStatus struct {
	Started *time.Time  `json:"started,omitempty" yaml:"started,omitempty"`
	Ended   *time.Time  `json:"ended,omitempty"   yaml:"ended,omitempty"`
	Phase   WorkerPhase `json:"phase,omitempty"   yaml:"phase,omitempty"`
}

// WorkerSpec configures the worker a project launches for each event.
type WorkerSpec struct {
	Container            *ContainerSpec    `json:"container,omitempty"            yaml:"container,omitempty"`
	UseWorkspace         *bool             `json:"useWorkspace,omitempty"         yaml:"useWorkspace,omitempty"`
	WorkspaceSize        string            `json:"workspaceSize,omitempty"        yaml:"workspaceSize,omitempty"`
	Git                  *GitConfig        `json:"git,omitempty"                  yaml:"git,omitempty"`
	Kubernetes           *KubernetesConfig `json:"kubernetes,omitempty"           yaml:"kubernetes,omitempty"`
	JobPolicies          *JobPolicies      `json:"jobPolicies,omitempty"          yaml:"jobPolicies,omitempty"`
	LogLevel             LogLevel          `json:"logLevel,omitempty"             yaml:"logLevel,omitempty"`
	ConfigFilesDirectory string            `json:"configFilesDirectory,omitempty" yaml:"configFilesDirectory,omitempty"`
	DefaultConfigFiles   map[string]string `json:"defaultConfigFiles,omitzero"   yaml:"defaultConfigFiles,omitempty"`
}

// DefaultScriptFile is the config file a worker executes when no other entry
// point is configured.
const DefaultScriptFile = "brigade.js"

// NewWorkerSpec creates a worker spec whose only config file is the given script.
func NewWorkerSpec(script string) WorkerSpec {
	return WorkerSpec{
		DefaultConfigFiles: map[string]string{
			DefaultScriptFile: script,
		},
	}
}

// GitConfig tells the worker where to fetch source code from.
type GitConfig struct {
	CloneURL       string `json:"cloneURL,omitempty"       yaml:"cloneURL,omitempty"`
	Commit         string `json:"commit,omitempty"         yaml:"commit,omitempty"`
	Ref            string `json:"ref,omitempty"            yaml:"ref,omitempty"`
	InitSubmodules *bool  `json:"initSubmodules,omitempty" yaml:"initSubmodules,omitempty"`
}

// KubernetesConfig holds cluster-specific worker settings.
type KubernetesConfig struct {
	ImagePullSecrets []string `json:"imagePullSecrets,omitzero" yaml:"imagePullSecrets,omitempty"`
}

// JobPolicies limits what the jobs a worker spawns may do.
type JobPolicies struct {
	AllowPrivileged        *bool `json:"allowPrivileged,omitempty"        yaml:"allowPrivileged,omitempty"`
	AllowDockerSocketMount *bool `json:"allowDockerSocketMount,omitempty" yaml:"allowDockerSocketMount,omitempty"`
}
