//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// LoadState is the state of a post list loader
// ENUM(idle,loading,populated,failed)
type LoadState string

// Presentation is what a rendering layer should show for a view
// ENUM(loading,empty,populated,unavailable)
type Presentation string
