package feed

// Action is a user-toggleable capability tied to a block, e.g. approving
// or trashing the comment the block represents. The set is closed: the
// service only ever declares these six, each under a fixed key in the
// block's raw action map.
type Action int

const (
	ActionApprove Action = iota
	ActionFollow
	ActionLike
	ActionReply
	ActionSpam
	ActionTrash
)

// actionKeys maps each Action to the key the service uses in the raw
// "actions" object of a block payload.
var actionKeys = [...]string{
	ActionApprove: "approve-comment",
	ActionFollow:  "follow",
	ActionLike:    "like-comment",
	ActionReply:   "replyto-comment",
	ActionSpam:    "spam-comment",
	ActionTrash:   "trash-comment",
}

// Key returns the server-side key for the action.
func (a Action) Key() string {
	if a < 0 || int(a) >= len(actionKeys) {
		return ""
	}
	return actionKeys[a]
}

func (a Action) String() string {
	switch a {
	case ActionApprove:
		return "approve"
	case ActionFollow:
		return "follow"
	case ActionLike:
		return "like"
	case ActionReply:
		return "reply"
	case ActionSpam:
		return "spam"
	case ActionTrash:
		return "trash"
	default:
		return "unknown"
	}
}

// parseActions keeps only entries with boolean values; anything else in
// the raw map is dropped, which reads back as "action unavailable".
func parseActions(raw map[string]any) map[string]bool {
	if len(raw) == 0 {
		return nil
	}
	actions := make(map[string]bool, len(raw))
	for key, v := range raw {
		if b, ok := v.(bool); ok {
			actions[key] = b
		}
	}
	if len(actions) == 0 {
		return nil
	}
	return actions
}
