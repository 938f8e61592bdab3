package apitests

import (
	"fmt"

	"github.com/smartshopping/api-contract-tests/client"
	"github.com/smartshopping/api-contract-tests/framework"
)

// RunTestSuite runs the full scenario sequence against the service behind apiClient.
//
// The order is fixed. A failure of the product listing aborts the rest of the run,
// since every later scenario depends on the product collection being readable. The
// scenarios that operate on a single product only run if the create scenario captured
// an ID for the record it made; the delete at the end cleans that record up. The
// shopping list is checked one final time regardless of whether the create succeeded.
func RunTestSuite(
	apiClient *client.APIClient,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env:     &environment{client: apiClient},
		}

		t.Run("API Root", testAPIRoot)

		if ok := t.Run("Get All Products", testGetAllProducts); !ok {
			// fatal precondition: nothing below makes sense without product data
			return
		}

		t.Run("Get Categories", testGetCategories)

		t.Run("Create Product", testCreateProduct)
		if id := t.env.createdProductID; id != "" {
			t.Run(scenarioNameWithID("Get Single Product", id), testGetSingleProduct)
			t.Run(scenarioNameWithID("Update Stock", id), testUpdateStock)
			t.Run(scenarioNameWithID("Update Product", id), testUpdateProduct)
			t.Run("Get Shopping List", testGetShoppingList)
			t.Run(scenarioNameWithID("Delete Product", id), testDeleteProduct)
		}

		t.Run("Get Shopping List", testGetShoppingList)
	})
}

func scenarioNameWithID(name, id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s (ID: %s...)", name, id)
}
