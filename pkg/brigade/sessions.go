package brigade

// RootUsername is the fixed user name for root sessions.
const RootUsername = "root"

// Token is a session credential returned by the platform. Its Value is used as
// the bearer token for subsequent requests.
type Token struct {
	TypeMeta `json:",inline" yaml:",inline"`

	Value string `json:"value" yaml:"value"`
}
