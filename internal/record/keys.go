package record

// Persisted key layout. The names match the keys the browser portal wrote
// to localStorage so an exported dump can be loaded as is. The session
// scalars were stored there as bare text; read them with GetString.
const (
	KeyUsers            = "mh_users_v1"
	KeyTickets          = "mh_admin_tickets"
	KeyCurrentUserID    = "mh_current_user"
	KeyCurrentPatientID = "mh_current_patient"
	KeyAdminLogged      = "mh_admin_logged"

	MessagesPrefix = "mh_msgs_"
	IssuesPrefix   = "mh_issues_"
)

// AdminLoggedValue is the stored value of a set admin flag.
const AdminLoggedValue = "1"

// MessagesKey returns the message log key of a peer.
func MessagesKey(peerID string) string { return MessagesPrefix + peerID }

// IssuesKey returns the issue log key of a peer.
func IssuesKey(peerID string) string { return IssuesPrefix + peerID }
