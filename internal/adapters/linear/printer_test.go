package linear_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/btl/internal/adapters/linear"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/core/ports"
)

func TestPrinter_Success(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	p := linear.NewPrinter(&stdout, &stderr)
	var _ ports.LineSink = p

	p.Begin("java -jar BuildTools.jar --rev 1.21")
	p.WriteLine("Loading BuildTools version")
	p.WriteLine("")
	p.WriteLine("Success! Everything completed successfully.")
	p.End(domain.ExitStatus{Code: 0}, 1500*time.Millisecond)

	assert.Equal(t, "Loading BuildTools version\n\nSuccess! Everything completed successfully.\n", stdout.String())
	goldie.New(t).Assert(t, "printer_success", stderr.Bytes())
}

func TestPrinter_Failure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	p := linear.NewPrinter(&stdout, &stderr)

	p.Begin("java -jar BuildTools.jar")
	p.End(domain.ExitStatus{Code: 1}, 42*time.Second)

	assert.Empty(t, stdout.String())
	goldie.New(t).Assert(t, "printer_failure", stderr.Bytes())
}
