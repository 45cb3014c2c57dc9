// Package domain contains the marketplace entities shared across packages:
// users and their balances, publisher websites and link listings, purchase
// requests, credit transactions, services, disputes, balance requests and
// site content. The types carry no infrastructure concerns.
package domain
