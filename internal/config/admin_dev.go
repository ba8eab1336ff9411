//go:build !release

package config

// AdminAllowed - можно ли включать режим администратора в этой сборке.
const AdminAllowed = true
