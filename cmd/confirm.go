package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/parkgrove/aws-endpoint-survey/pkg/catalog"
)

// confirmFullScan gates the unfiltered run behind an interactive prompt.
// Only an exact "y" or "Y" answer proceeds; everything else, including EOF,
// aborts before any AWS call is made. The prompt goes to stderr so stdout
// stays reserved for the JSON document.
func confirmFullScan(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "This tool will retrieve all AWS service endpoints for all services in all regions.")
	fmt.Fprintln(out, "This will make a large number of API calls and may take a long time.")
	fmt.Fprint(out, "Are you sure you want to continue? (y/n) ")

	// the read cannot be cancelled, so it races against ctx in a goroutine;
	// on interrupt the process exits right behind us
	answers := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(in).ReadString('\n')
		answers <- line
	}()

	select {
	case <-ctx.Done():
		return catalog.ErrUserInterrupted
	case answer := <-answers:
		if strings.ToLower(strings.TrimRight(answer, "\r\n")) != "y" {
			return catalog.ErrUserAborted
		}
	}

	return nil
}
