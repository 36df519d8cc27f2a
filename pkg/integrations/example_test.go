package integrations_test

import (
	"fmt"

	"github.com/younextz/screenshot-styler/pkg/integrations"
)

func ExampleURLEncode() {
	fmt.Println(integrations.URLEncode("https://x.com/jack/status/20"))
	// Output:
	// https%3A%2F%2Fx.com%2Fjack%2Fstatus%2F20
}
