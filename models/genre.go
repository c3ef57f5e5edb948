package models

// Genre classifies movies. It is embedded by value into Movie documents,
// so renaming a genre later does not rewrite existing movies.
type Genre struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
