package discordcrypto

import (
	"github.com/kolonahe/discordcrypto/internal/logging"
)

var log = logging.DefaultLogger.WithTag("discordcrypto")
