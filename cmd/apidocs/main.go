package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/xether-ai/apidocs/bootstrap"
	"github.com/xether-ai/apidocs/configuration"
)

var banner = `
__  __     _   _               ____
\ \/ / ___| |_| |__   ___ _ __|  _ \  ___   ___ ___
 \  / / _ \ __| '_ \ / _ \ '__| | | |/ _ \ / __/ __|
 /  \|  __/ |_| | | |  __/ |  | |_| | (_) | (__\__ \
/_/\_\\___|\__|_| |_|\___|_|  |____/ \___/ \___|___/
                            version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
