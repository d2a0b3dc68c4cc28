package baidu

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// Sign computes the request signature: lowercase hex MD5 of appID+text+salt+secretKey.
// text must be exactly the q value sent on the wire.
func Sign(appID, text, salt, secretKey string) string {
	sum := md5.Sum([]byte(appID + text + salt + secretKey))
	return hex.EncodeToString(sum[:])
}

// NewSalt returns the current epoch milliseconds followed by four random digits.
func NewSalt() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + fmt.Sprintf("%04d", rand.IntN(10000))
}
