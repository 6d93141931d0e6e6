package common

// DefaultCategoryName is the per-user category created at signup. It cannot
// be renamed, deleted, or taken by another category of the same user.
const DefaultCategoryName = "Uncategorized"
