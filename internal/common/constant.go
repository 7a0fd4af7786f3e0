package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the operator
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultProgramID is the address the registry program is deployed under
// unless configured otherwise.
const DefaultProgramID = "4DHXD1JVCTYQnWVXpqG1HY9LbAocbsfQUbDqmK4qBB4o"
