package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record for the signup/login pair. The password is
// stored and compared as given; hashing it would change the stored value
// format, which existing deployments depend on.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserName string             `json:"userName" bson:"userName"`
	Password string             `json:"password" bson:"password"`
	Name     string             `json:"name" bson:"name"`
}

type SignUpPayload struct {
	UserName string `json:"userName" form:"userName" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Name     string `json:"name" form:"name" validate:"required"`
}

type LoginPayload struct {
	UserName string `json:"userName" form:"userName"`
	Password string `json:"password" form:"password"`
}
