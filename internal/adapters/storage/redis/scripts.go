package redis

import goredis "github.com/redis/go-redis/v9"

// Cada escritura es un script Lua: chequeo + mutación en un solo paso atómico.
// deletePerson arma keys de pets dentro del script, así que el store asume un
// único nodo (no Redis Cluster).
var (
	addPersonScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HSET', KEYS[1], 'id', ARGV[1], 'first_name', ARGV[2], 'last_name', ARGV[3])
redis.call('ZADD', KEYS[2], 0, ARGV[1])
return 1
`)

	updatePersonScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
redis.call('HSET', KEYS[1], 'first_name', ARGV[1], 'last_name', ARGV[2])
return 1
`)

	deletePersonScript = goredis.NewScript(`
if redis.call('DEL', KEYS[1]) == 0 then
  return 0
end
redis.call('ZREM', KEYS[2], ARGV[1])
for _, pid in ipairs(redis.call('SMEMBERS', KEYS[3])) do
  redis.call('DEL', ARGV[2] .. pid)
end
redis.call('DEL', KEYS[3])
return 1
`)

	addPetScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
if redis.call('EXISTS', KEYS[2]) == 1 then
  return 0
end
redis.call('HSET', KEYS[2], 'id', ARGV[1], 'name', ARGV[2], 'person_id', ARGV[3])
redis.call('SADD', KEYS[3], ARGV[1])
return 1
`)

	addAccountScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HSET', KEYS[1], 'id', ARGV[1], 'email', ARGV[2], 'password', ARGV[3])
return 1
`)
)
