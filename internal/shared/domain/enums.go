//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// Locale selects the language of user-facing messages
// ENUM(en,zh)
type Locale string

// FlowState tracks the progress of a user-initiated flow
// ENUM(idle,pending,succeeded,failed)
type FlowState string
