package assistant

// Operator-facing texts. WelcomeText opens every new session; the failure
// texts are the only way backend errors surface in the log.
const (
	WelcomeText = "Hi! I’m Movi. I can help you manage routes, deployments and day-of operations. Ask me anything or upload a screenshot for visual lookup."

	DispatchFailureText = "Sorry, I ran into an issue talking to the backend."
	VisionFailureText   = "Image analysis failed."

	// DoneText is used when the backend replies without a message.
	DoneText = "Done."

	// ConfirmUtterance is the synthetic user text recorded for a confirmation
	// round-trip. It bypasses classification entirely.
	ConfirmUtterance = "Confirm action"
)

// DefaultPrompts are the canned requests offered to operators.
var DefaultPrompts = []string{
	"List unassigned vehicles for the next trip",
	"Remove vehicle from Bulk - 00:01",
	"Create a new stop called West Gate",
	"Show me trips on this page",
}
