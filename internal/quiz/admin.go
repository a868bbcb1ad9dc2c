package quiz

// AdminClicks is the number of title clicks that reveal the admin surface.
const AdminClicks = 7

// AdminUnlock counts clicks on the app title. Once unlocked it stays unlocked.
type AdminUnlock struct {
	clicks int
}

// Click records a click and reports whether admin mode is now on.
func (a *AdminUnlock) Click() bool {
	a.clicks++
	return a.Unlocked()
}

func (a *AdminUnlock) Unlocked() bool { return a.clicks >= AdminClicks }
