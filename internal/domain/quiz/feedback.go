package quiz

import (
	"fmt"
	"strings"
)

// ComposeExplanation builds the sentence shown after a classification
// question. The grammar depends on the number of labels.
func ComposeExplanation(name string, labels []string) string {
	switch n := len(labels); n {
	case 0:
		return fmt.Sprintf("It is %s.", name)
	case 1:
		return fmt.Sprintf("It is %s, from the %s era.", name, labels[0])
	case 2:
		return fmt.Sprintf("It is %s, from both the %s and the %s era.", name, labels[0], labels[1])
	default:
		return fmt.Sprintf("It is %s, from %s and %s.", name, strings.Join(labels[:n-1], ", "), labels[n-1])
	}
}
