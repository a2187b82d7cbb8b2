//go:generate mockgen -source=../breed_provider.go   -destination=./mock_breed_provider.go   -package=mocks
//go:generate mockgen -source=../sub_breed_lookup.go -destination=./mock_sub_breed_lookup.go -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks

package mocks
