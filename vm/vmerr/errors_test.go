package vmerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	myassert := assert.New(t)

	err := User("non-payable")
	myassert.True(IsUser(err))
	myassert.Equal(UserError, CodeOf(err))
	myassert.Equal([]byte("non-payable"), From(err).Message)

	wrapped := errors.Wrap(err, "hook")
	myassert.True(IsUser(wrapped))

	myassert.True(IsUnavailable(Unavailable("bigIntEDiv")))
	myassert.True(From(Unavailable("bigIntEDiv")).IsFatal())

	plain := From(errors.New("disk failure"))
	myassert.Equal(SeverityFatal, plain.Severity)
	myassert.Equal(ExecutionFailed, plain.Code)

	myassert.Equal(OutOfGas, CodeOf(OutOfGasError()))
	myassert.Equal(Ok, CodeOf(nil))
	myassert.Nil(From(nil))
}

func TestUserBytesCopies(t *testing.T) {
	msg := []byte("no")
	err := UserBytes(msg)
	msg[0] = 'x'
	assert.Equal(t, []byte("no"), From(err).Message)
}

func TestReturnCodeString(t *testing.T) {
	myassert := assert.New(t)
	myassert.Equal("out of funds", OutOfFunds.String())
	myassert.Equal("unknown error", ReturnCode(99).String())
}
