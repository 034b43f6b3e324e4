package item

// --- Item Domain Model ---

// Item is the persisted entity managed by this module.
// ID is assigned by the store on creation and never reused.
type Item struct {
	ID          int64
	Title       string
	Description string
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Title       string
	Description string
}

// UpdateItemInput replaces both fields wholesale. An empty Description
// overwrites whatever the entity held before.
type UpdateItemInput struct {
	ID          int64
	Title       string
	Description string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}

// DeleteItemOutput carries the entity as it existed immediately before
// deletion.
type DeleteItemOutput struct {
	Item Item
}
