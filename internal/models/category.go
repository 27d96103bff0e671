package models

import "encoding/json"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts the entity's "categoryName" as well as "name".
func (c *Category) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID           int64  `json:"id"`
		Name         string `json:"name"`
		CategoryName string `json:"categoryName"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	c.Name = raw.Name

	if c.Name == "" {
		c.Name = raw.CategoryName
	}

	return nil
}
