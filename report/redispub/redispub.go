/*
Package redispub publishes pipeline reports on a Redis pub/sub channel, from
which an external rendering layer can pick them up.
*/
package redispub

import (
	"context"
	"fmt"

	"github.com/bendazz/stacking/report"
	redis "gopkg.in/redis.v5"
)

/*
Client is an interface wrapping the Publish method, which sends a message on
a channel and returns the number of subscribers that received it.
*/
type Client interface {
	Publish(channel, message string) (int64, error)
}

type redisClient struct {
	rc *redis.Client
}

/*
NewClient takes a redis client and returns a Client that publishes through it.
*/
func NewClient(rc *redis.Client) Client {
	return &redisClient{rc}
}

func (c *redisClient) Publish(channel, message string) (int64, error) {
	return c.rc.Publish(channel, message).Result()
}

/*
Publisher sends reports encoded as JSON on a channel
*/
type Publisher struct {
	client  Client
	channel string
}

/*
New takes a Client and a channel name and returns a Publisher for that
channel.
*/
func New(c Client, channel string) *Publisher {
	return &Publisher{c, channel}
}

/*
Publish takes a context and a report and publishes the report on the channel
of the publisher. It returns the number of subscribers that received it or an
error.
*/
func (p *Publisher) Publish(ctx context.Context, r *report.Report) (int64, error) {
	msg, err := report.Encode(r)
	if err != nil {
		return 0, fmt.Errorf("encoding report: %v", err)
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}
	n, err := p.client.Publish(p.channel, string(msg))
	if err != nil {
		return 0, fmt.Errorf("publishing report on %s: %v", p.channel, err)
	}
	return n, nil
}
