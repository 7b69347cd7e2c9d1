package gitcmds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusRecordsEmpty(t *testing.T) {
	assert.Empty(t, parseStatusRecords(""))
}

func TestParseStatusRecords(t *testing.T) {
	out := "?? a.txt\x00 M b c.txt\x00A  new\nline.txt\x00"
	paths := parseStatusRecords(out)
	assert.Equal(t, []string{"a.txt", "b c.txt", "new\nline.txt"}, paths)
}

func TestParseStatusRecordsSkipsEmptyPath(t *testing.T) {
	// a record whose path part is empty after the status prefix is dropped
	out := "?? \x00?? kept.txt\x00"
	paths := parseStatusRecords(out)
	assert.Equal(t, []string{"kept.txt"}, paths)
}

func TestParseStatusRecordsKeepsOrderAndDuplicates(t *testing.T) {
	out := " M z.txt\x00?? a.txt\x00?? a.txt\x00"
	paths := parseStatusRecords(out)
	assert.Equal(t, []string{"z.txt", "a.txt", "a.txt"}, paths)
}

func TestCommitMessage(t *testing.T) {
	assert.Equal(t, "Auto-batch commit: Part 1 of 3", commitMessage(DefaultMessagePrefix, 1, 3))
	assert.Equal(t, "Auto-batch commit: Part 3 of 3", commitMessage(DefaultMessagePrefix, 3, 3))
	assert.Equal(t, "wip: Part 2 of 2", commitMessage("wip: Part", 2, 2))
}
