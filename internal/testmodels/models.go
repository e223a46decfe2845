// Package testmodels holds fixture types shared by tests across the module.
package testmodels

import (
	"math"
	"time"
)

// Status is the lifecycle state of an [Account].
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusDeleted   Status = "deleted"
)

// Shape is a closed set of geometric figures.
type Shape interface {
	Area() float64
}

// Circle is a [Shape] defined by its radius.
type Circle struct {
	// Radius is the distance from the center to the edge.
	Radius float64 `json:"radius"`
}

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Rectangle is a [Shape] defined by its width and height.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rectangle) Area() float64 { return r.Width * r.Height }

// TreeNode is a node in a tree of labels.
// It holds a list of itself.
type TreeNode struct {
	// Label is the node's display text.
	Label    string     `json:"label"`
	Children []TreeNode `json:"children,omitempty"`
}

// Account is a sample aggregate used for testing.
// Its owner is a [User].
type Account struct {
	// ID uniquely identifies the account.
	ID        string    `json:"id"`
	Status    Status    `json:"status"` // Status is the account's lifecycle state.
	Owner     *User     `json:"owner,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Scores    [][]int64 `json:"scores,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Secret    string    `json:"-"`
	NoTag     int
}

// User is the owner of an [Account].
type User struct {
	// Name is the user's display name.
	Name string `json:"name"`
	Age  int    `json:"age,omitempty"`
}
