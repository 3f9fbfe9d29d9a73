package gocommand

import (
	"fmt"

	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	tokenstore "github.com/goliatone/go-tokenstore"
	tokencommand "github.com/goliatone/go-tokenstore/command"
	"github.com/goliatone/go-tokenstore/core"
	tokenquery "github.com/goliatone/go-tokenstore/query"
)

// RegisterFacade registers and subscribes every token store command and
// query so they can be sent with Dispatch and Query. On error the
// subscriptions made so far are released.
func RegisterFacade(
	adapter *RegistryAdapter,
	facade *tokenstore.Facade,
	runnerOpts ...runner.Option,
) ([]commanddispatcher.Subscription, error) {
	if facade == nil {
		return nil, fmt.Errorf("gocommand: token store facade is required")
	}
	commands := facade.Commands()
	queries := facade.Queries()

	subscriptions := make([]commanddispatcher.Subscription, 0, 7)
	release := func() {
		for _, subscription := range subscriptions {
			if subscription != nil {
				subscription.Unsubscribe()
			}
		}
	}
	track := func(subscription commanddispatcher.Subscription, err error) error {
		if err != nil {
			release()
			return err
		}
		subscriptions = append(subscriptions, subscription)
		return nil
	}

	if err := track(RegisterAndSubscribe[tokencommand.SaveTokenMessage](adapter, commands.Save, runnerOpts...)); err != nil {
		return nil, err
	}
	if err := track(RegisterAndSubscribe[tokencommand.DeleteTokenMessage](adapter, commands.Delete, runnerOpts...)); err != nil {
		return nil, err
	}
	if err := track(RegisterAndSubscribe[tokencommand.DeleteAllTokensMessage](adapter, commands.DeleteAll, runnerOpts...)); err != nil {
		return nil, err
	}
	if err := track(RegisterAndSubscribeQuery[tokenquery.LookupByEnvironmentMessage, *core.Token](adapter, queries.LookupByEnvironment, runnerOpts...)); err != nil {
		return nil, err
	}
	if err := track(RegisterAndSubscribeQuery[tokenquery.LookupMatchingMessage, *core.Token](adapter, queries.LookupMatching, runnerOpts...)); err != nil {
		return nil, err
	}
	if err := track(RegisterAndSubscribeQuery[tokenquery.LookupByIDMessage, *core.Token](adapter, queries.LookupByID, runnerOpts...)); err != nil {
		return nil, err
	}
	if err := track(RegisterAndSubscribeQuery[tokenquery.ListTokensMessage, []*core.Token](adapter, queries.List, runnerOpts...)); err != nil {
		return nil, err
	}
	return subscriptions, nil
}
