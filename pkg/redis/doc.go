// Package redis opens go-redis clients from a Config and provides
// health and shutdown hooks for the server lifecycle.
//
//	client, err := redis.Open(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	checks["redis"] = redis.Healthcheck(client)
//	hooks = append(hooks, redis.Shutdown(client))
package redis
