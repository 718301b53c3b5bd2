package store

import (
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDupEntry(t *testing.T) {
	assert.True(t, isDupEntry(&mysql.MySQLError{Number: erDupEntry, Message: "dup"}))
	assert.False(t, isDupEntry(&mysql.MySQLError{Number: 1045, Message: "denied"}))
	assert.False(t, isDupEntry(fmt.Errorf("some other error")))
}

func TestNullableID(t *testing.T) {
	assert.Nil(t, nullableID(0))
	assert.Equal(t, int64(7), nullableID(7))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `stream "x" not found`, (&ErrStreamNotFound{Name: "x"}).Error())
	assert.Equal(t, `stream "x" already exists`, (&ErrStreamExists{Name: "x"}).Error())
	assert.Equal(t, `tag "v1" already exists`, (&ErrTagExists{Name: "v1"}).Error())

	assert.True(t, IsErrStreamNotFound(&ErrStreamNotFound{Name: "x"}))
	assert.True(t, IsErrStreamExists(&ErrStreamExists{Name: "x"}))
	assert.True(t, IsErrTagExists(&ErrTagExists{Name: "x"}))
}
