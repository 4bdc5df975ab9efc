package domain

// Avatar is one of the fixed profile pictures a user can pick.
type Avatar struct {
	ID    string
	Emoji string
	Label string
}

// Avatars is the closed set of selectable avatars, in display order.
var Avatars = []Avatar{
	{ID: "doctor", Emoji: "🩺", Label: "Ärztin/Arzt"},
	{ID: "nurse", Emoji: "👩‍⚕️", Label: "Pflege"},
	{ID: "surgeon", Emoji: "🔬", Label: "Chirurgie"},
	{ID: "pharmacist", Emoji: "💊", Label: "Pharmazie"},
	{ID: "researcher", Emoji: "🧬", Label: "Forschung"},
	{ID: "therapist", Emoji: "🧠", Label: "Therapie"},
	{ID: "paramedic", Emoji: "🚑", Label: "Rettung"},
	{ID: "lab", Emoji: "🧪", Label: "Labor"},
	{ID: "admin", Emoji: "📋", Label: "Administration"},
	{ID: "it", Emoji: "💻", Label: "IT / Technik"},
	{ID: "heart", Emoji: "❤️", Label: "Kardiologie"},
	{ID: "baby", Emoji: "👶", Label: "Geburtshilfe"},
}

// DefaultAvatarID is assigned to new profiles.
const DefaultAvatarID = "doctor"

// IsValidAvatar reports whether id names one of Avatars.
func IsValidAvatar(id string) bool {
	for _, a := range Avatars {
		if a.ID == id {
			return true
		}
	}
	return false
}
