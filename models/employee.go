package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender is the enumerated gender value accepted for an employee record.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Employee struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	MobileNo    string             `json:"mobileNo" bson:"mobileNo"`
	Designation string             `json:"designation" bson:"designation"`
	Gender      Gender             `json:"gender" bson:"gender"`
	Course      []string           `json:"course" bson:"course"`
	CreateDate  time.Time          `json:"createDate" bson:"createDate"`
	ImgUpload   string             `json:"imgUpload" bson:"imgUpload"`
}

// EmployeePayload is the request body for creating and updating employees.
// Only name, email, mobileNo and imgUpload are pre-checked; designation,
// gender and course are left to the collection schema, whose rejection
// surfaces through the store error classifier.
type EmployeePayload struct {
	Name        string    `json:"name" form:"name" validate:"required"`
	Email       string    `json:"email" form:"email" validate:"required,emailformat"`
	MobileNo    string    `json:"mobileNo" form:"mobileNo" validate:"required,mobileno"`
	Designation string    `json:"designation" form:"designation"`
	Gender      Gender    `json:"gender" form:"gender"`
	Course      []string  `json:"course" form:"course"`
	CreateDate  time.Time `json:"createDate" form:"createDate"`
	ImgUpload   string    `json:"imgUpload" form:"imgUpload" validate:"required"`
}
