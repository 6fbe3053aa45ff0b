package models

import "time"

// AccessTokenModel is the persisted server-side record of an issued
// credential. Clients never hold the raw id; they hold a signed envelope
// wrapping it. Records are only ever mutated to flip Revoked; expiry is
// enforced at query time, not by deletion.
type AccessTokenModel struct {
	ID        string    `bson:"_id"       json:"id"`
	UserID    string    `bson:"userId"    json:"-"`
	Revoked   bool      `bson:"revoked"   json:"-"`
	ExpiresAt time.Time `bson:"expiresAt" json:"-"`
}

func (AccessTokenModel) CollectionName() string { return "accessTokens" }
