package shopify

// cartFields — полная форма корзины. Её выбирает каждая мутация, поэтому ответа мутации
// достаточно для перерисовки без повторного запроса cart(id).
const cartFields = `
  fragment CartFields on Cart {
    id
    checkoutUrl
    totalQuantity
    cost {
      subtotalAmount { amount currencyCode }
      totalAmount { amount currencyCode }
    }
    lines(first: 100) {
      edges {
        node {
          id
          quantity
          cost { totalAmount { amount currencyCode } }
          merchandise {
            ... on ProductVariant {
              id
              title
              price { amount currencyCode }
              product { id title handle featuredImage { url altText } }
            }
          }
        }
      }
    }
  }
`

const (
	queryProductsPaged = `#graphql
  query ProductsPaged($first: Int!, $after: String) {
    products(first: $first, after: $after, sortKey: TITLE) {
      edges {
        cursor
        node {
          id
          title
          handle
          featuredImage { url altText }
          variants(first: 1) {
            edges { node { id title price { amount currencyCode } } }
          }
        }
      }
      pageInfo { hasNextPage endCursor }
    }
  }
`

	mutationCartCreate = `#graphql
  mutation CartCreate($lines: [CartLineInput!]) {
    cartCreate(input: { lines: $lines }) {
      cart { ...CartFields }
      userErrors { field message }
    }
  }
` + cartFields

	mutationCartLinesAdd = `#graphql
  mutation CartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
    cartLinesAdd(cartId: $cartId, lines: $lines) {
      cart { ...CartFields }
      userErrors { field message }
    }
  }
` + cartFields

	queryCart = `#graphql
  query Cart($id: ID!) {
    cart(id: $id) { ...CartFields }
  }
` + cartFields

	mutationCartLinesUpdate = `#graphql
  mutation CartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
    cartLinesUpdate(cartId: $cartId, lines: $lines) {
      cart { ...CartFields }
      userErrors { field message }
    }
  }
` + cartFields

	mutationCartLinesRemove = `#graphql
  mutation CartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
    cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
      cart { ...CartFields }
      userErrors { field message }
    }
  }
` + cartFields
)

// ProductsPagedQuery — запрос страницы каталога; его же отправляет клиент через /api/storefront.
const ProductsPagedQuery = queryProductsPaged
