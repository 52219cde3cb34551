package models

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const courseIDSuffixLength = 9

// NewCourseID returns an ID of the form <unix-millis>-<base36 suffix>. The ID always contains exactly
// one hyphen, which the slug decoder relies on.
func NewCourseID() string {
	return newCourseID(time.Now(), uuid.New())
}

func newCourseID(now time.Time, u uuid.UUID) string {
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(suffix) < courseIDSuffixLength {
		suffix = strings.Repeat("0", courseIDSuffixLength-len(suffix)) + suffix
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix[:courseIDSuffixLength])
}
