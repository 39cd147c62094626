//go:generate mockgen -source=../storefront.go              -destination=./mock_storefront.go              -package=mocks
//go:generate mockgen -source=../cart_service.go            -destination=./mock_cart_service.go            -package=mocks
//go:generate mockgen -source=../catalog_service.go         -destination=./mock_catalog_service.go         -package=mocks
//go:generate mockgen -source=../catalog_cache.go           -destination=./mock_catalog_cache.go           -package=mocks
//go:generate mockgen -source=../cart_session_repository.go -destination=./mock_cart_session_repository.go -package=mocks
//go:generate mockgen -source=../event_publisher.go         -destination=./mock_event_publisher.go         -package=mocks
//go:generate mockgen -source=../validator.go               -destination=./mock_validator.go               -package=mocks
//go:generate mockgen -source=../logger.go                  -destination=./mock_logger.go                  -package=mocks

package mocks
