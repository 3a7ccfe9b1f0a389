package mylog

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConvertLevel(t *testing.T) {
	myassert := assert.New(t)
	myassert.Equal(logrus.DebugLevel, convertLevel(DebugLevel))
	myassert.Equal(logrus.WarnLevel, convertLevel(WarnLevel))
	myassert.Equal(logrus.InfoLevel, convertLevel("verbose"))
}

func TestFunctionHooker(t *testing.T) {
	clog := Init("", WarnLevel, 0)
	var buf bytes.Buffer
	clog.Out = &buf
	clog.Warn("careful")
	assert.Contains(t, buf.String(), "TestFunctionHooker")

	buf.Reset()
	clog.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestFileRotateHooker(t *testing.T) {
	dir, err := ioutil.TempDir("", "mylog")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	clog := Init(dir, InfoLevel, 1)
	clog.Out = emptyWriter{}
	clog.Info("to file")

	files, err := ioutil.ReadDir(dir)
	assert.NoError(t, err)
	assert.NotEmpty(t, files)
}
