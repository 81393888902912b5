package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyError(message string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: message}},
	}
}

func TestClassifyWriteError(t *testing.T) {
	emailDup := duplicateKeyError(`E11000 duplicate key error collection: employeeDB.employees index: email_1 dup key: { email: "alice@example.com" }`)
	assert.ErrorIs(t, classifyWriteError(emailDup), ErrDuplicateEmail)

	mobileDup := duplicateKeyError(`E11000 duplicate key error collection: employeeDB.employees index: mobileNo_1 dup key: { mobileNo: "0123456789" }`)
	assert.ErrorIs(t, classifyWriteError(mobileDup), ErrDuplicateMobile)

	userNameDup := duplicateKeyError(`E11000 duplicate key error collection: employeeDB.users index: userName_1 dup key: { userName: "alice" }`)
	assert.ErrorIs(t, classifyWriteError(userNameDup), ErrDuplicateField)
}

func TestClassifyWriteErrorPassthrough(t *testing.T) {
	assert.NoError(t, classifyWriteError(nil))

	// anything that is not a duplicate-key violation comes back unchanged
	plain := errors.New("connection reset by peer")
	assert.Equal(t, plain, classifyWriteError(plain))

	validation := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 121, Message: "Document failed validation"}},
	}
	assert.Equal(t, error(validation), classifyWriteError(validation))
}
