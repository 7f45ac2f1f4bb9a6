package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconCursor  = "\uf054" // chevron-right
	IconArrow   = "\uf061" // arrow right
	IconClock   = "\uf017" // clock
	IconBattery = "\uf240" // battery
	IconVersion = "\uf02b" // tag
	IconGo      = "\ue627" // go gopher
	IconGithub  = "\uf09b" // github

	IconToggleOn  = "\uf205" // toggle-on
	IconToggleOff = "\uf204" // toggle-off
)
