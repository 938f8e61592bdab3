package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Field names every shopping list item is expected to carry.
var shoppingItemRequiredFields = []string{
	"product_id",
	"produto_nome",
	"categoria",
	"quantidade_necessaria",
	"unidade",
}

// The shopping list is a server-side view of products whose current quantity is
// at or below their minimum, so its contents depend on what the other scenarios
// have done; the test only checks reachability and item shape, never contents.
func testGetShoppingList(t *T) {
	ok, data := t.RunRequest("GET", "shopping-list", 200, RequestOpts{})
	if !ok || data.Type() != ldvalue.ArrayType {
		return
	}
	t.Debug("Found %d items in shopping list", data.Count())
	if data.Count() > 0 {
		t.warnOnMissingFields("shopping item", data.GetByIndex(0), shoppingItemRequiredFields)
	}
}
