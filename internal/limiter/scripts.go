package limiter

import "github.com/redis/go-redis/v9"

// admitScript keeps one sorted set of request timestamps per client and answers
// {admitted, remaining}: admitted is 1 or 0, remaining is what is left of the budget
// after this request. Rejected requests are not recorded, so they do not extend the window.
var admitScript = redis.NewScript(`
local key = KEYS[1]
local nowMs = tonumber(ARGV[1])
local windowMs = tonumber(ARGV[2])
local budget = tonumber(ARGV[3])

redis.call("ZREMRANGEBYSCORE", key, "-inf", nowMs - windowMs)
local used = redis.call("ZCARD", key)

if used >= budget then
    return {0, 0}
end

redis.call("ZADD", key, nowMs, ARGV[4])
redis.call("PEXPIRE", key, windowMs)
return {1, budget - used - 1}
`)
