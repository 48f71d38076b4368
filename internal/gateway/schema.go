package gateway

import (
	"errors"

	"order-demo-backend/internal/menu"
	"order-demo-backend/internal/reservation"

	"github.com/graphql-go/graphql"
)

// Resolvers holds exactly the services the schema needs. No per-request
// state lives here.
type Resolvers struct {
	Menu        *menu.Service
	Reservation *reservation.Service
}

// CartItemResponse mirrors the schema type of the same name. success is true
// only for an actual reservation; invalid input, missing items and exhausted
// stock are structured responses, not GraphQL errors.
type CartItemResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	MenuItem interface{} `json:"menuItem"`
}

var errInternal = errors.New("An error occurred while processing your request.")

// NewSchema builds the GraphQL schema:
//
//	type MenuItem { id: ID!, name: String!, description: String, stock: Int! }
//	type CartItemResponse { success: Boolean!, message: String, menuItem: MenuItem }
//	type Query { menuItems: [MenuItem!]!, menuItem(id: ID!): MenuItem }
//	type Mutation { attemptAddToCart(itemId: ID!): CartItemResponse! }
func NewSchema(r Resolvers) (graphql.Schema, error) {
	menuItemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "MenuItem",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"stock":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	cartItemResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CartItemResponse",
		Fields: graphql.Fields{
			"success":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message":  &graphql.Field{Type: graphql.String},
			"menuItem": &graphql.Field{Type: menuItemType},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"menuItems": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(menuItemType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					items, err := r.Menu.ListItems(p.Context)
					if err != nil {
						return nil, errInternal
					}
					return items, nil
				},
			},
			"menuItem": &graphql.Field{
				Type: menuItemType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					item, err := r.Menu.GetItem(p.Context, id)
					if err != nil {
						return nil, errInternal
					}
					if item == nil {
						return nil, nil
					}
					return item, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"attemptAddToCart": &graphql.Field{
				Type: graphql.NewNonNull(cartItemResponseType),
				Args: graphql.FieldConfigArgument{
					"itemId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					itemID, _ := p.Args["itemId"].(string)
					res := r.Reservation.AttemptReserve(p.Context, itemID)
					if res.Outcome == reservation.OutcomeInternalError {
						return nil, errInternal
					}
					resp := CartItemResponse{
						Success: res.Outcome == reservation.OutcomeReserved,
						Message: res.Message,
					}
					if res.Item != nil {
						resp.MenuItem = res.Item
					}
					return resp, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
