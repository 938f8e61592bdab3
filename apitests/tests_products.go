package apitests

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Field names every product record is expected to carry.
var productRequiredFields = []string{
	"id",
	"nome",
	"categoria",
	"quantidade_atual",
	"quantidade_minima",
	"unidade",
}

// The record created (and later deleted) by the CRUD scenarios. Its current
// quantity is below its minimum so that it shows up on the shopping list.
var testProductPayload = map[string]interface{}{
	"nome":              "Produto Teste API",
	"categoria":         "Teste",
	"quantidade_atual":  5.0,
	"quantidade_minima": 10.0,
	"unidade":           "un",
}

func testAPIRoot(t *T) {
	t.RunRequest("GET", "", 200, RequestOpts{})
}

func testGetAllProducts(t *T) {
	ok, data := t.RunRequest("GET", "products", 200, RequestOpts{})
	if !ok || data.Type() != ldvalue.ArrayType {
		return
	}
	t.Debug("Found %d products in database", data.Count())
	if data.Count() > 0 {
		t.warnOnMissingFields("product", data.GetByIndex(0), productRequiredFields)
	}
}

func testGetCategories(t *T) {
	ok, data := t.RunRequest("GET", "products/categories", 200, RequestOpts{})
	if !ok {
		return
	}
	if categories := data.GetByKey("categories"); categories.Type() == ldvalue.ArrayType {
		t.Debug("Found %d categories: %s", categories.Count(), categoryPreview(categories))
	}
}

func testCreateProduct(t *T) {
	ok, data := t.RunRequest("POST", "products", 200, RequestOpts{Body: testProductPayload})
	if !ok {
		return
	}
	if id := data.GetByKey("id"); id.IsString() && id.StringValue() != "" {
		t.env.createdProductID = id.StringValue()
		t.Debug("Created product with ID: %s", t.env.createdProductID)
	}
}

func testGetSingleProduct(t *T) {
	t.RunRequest("GET", "products/"+t.env.createdProductID, 200, RequestOpts{})
}

func testUpdateStock(t *T) {
	t.RunRequest("PUT", "products/"+t.env.createdProductID+"/stock", 200,
		RequestOpts{Body: map[string]interface{}{"quantidade_atual": 15.0}})
}

func testUpdateProduct(t *T) {
	t.RunRequest("PUT", "products/"+t.env.createdProductID, 200,
		RequestOpts{Body: map[string]interface{}{
			"nome":      "Produto Teste Atualizado",
			"categoria": "Teste Atualizado",
		}})
}

func testDeleteProduct(t *T) {
	t.RunRequest("DELETE", "products/"+t.env.createdProductID, 200, RequestOpts{})
}

// categoryPreview formats up to the first five category names for debug output.
func categoryPreview(categories ldvalue.Value) string {
	var names []string
	for i := 0; i < categories.Count() && i < 5; i++ {
		names = append(names, valueText(categories.GetByIndex(i)))
	}
	return strings.Join(names, ", ")
}
