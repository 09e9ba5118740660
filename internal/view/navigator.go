package view

// Navigator is the routing collaborator. The views only ever ask it to move
// somewhere else; where routes live is not their concern.
type Navigator interface {
	// Redirect navigates to an absolute path.
	Redirect(path string)

	// Back returns to the previous screen.
	Back()
}
