package models

// UserModel represents a registered user. Users are immutable after creation
// and are never deleted.
type UserModel struct {
	ID    string `bson:"_id"   json:"id"`
	Email string `bson:"email" json:"email"`
}

func (UserModel) CollectionName() string { return "users" }
